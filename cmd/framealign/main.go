// Command framealign aligns two recordings, given as directories of frame
// images or as text files compared line by line, and prints the edit script
// that turns the first into the second.
//
//	framealign frames ./take1 ./take2 --metric perceptual --cache-dir ~/.cache/framealign
//	framealign lines old.txt new.txt --format json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "framealign:", err)
		os.Exit(1)
	}
}
