// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/digestbridge/digestbridge/cmd"
	_ "github.com/digestbridge/digestbridge/cmd/checksum"
	_ "github.com/digestbridge/digestbridge/cmd/hashsum"
	_ "github.com/digestbridge/digestbridge/cmd/hkdf"
	_ "github.com/digestbridge/digestbridge/cmd/list"
	_ "github.com/digestbridge/digestbridge/cmd/md5sum"
	_ "github.com/digestbridge/digestbridge/cmd/rc"
	_ "github.com/digestbridge/digestbridge/cmd/sha1sum"
	_ "github.com/digestbridge/digestbridge/cmd/version"
)
