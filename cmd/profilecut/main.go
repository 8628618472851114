// ProfileCut optimizes 1D cutting of aluminium profiles against standard
// purchasable stock lengths.
//
// Build:
//
//	go build -o profilecut ./cmd/profilecut
package main

import "github.com/piwi3910/ProfileCut/cmd/profilecut/commands"

func main() {
	commands.Execute()
}
