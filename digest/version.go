package digest

// Version of digestbridge
var Version = "v0.3.0-DEV"
