/*
Command complib drives the algorithms of package complib from the command
line. Problem instances are read from stdin or from YAML documents.

	complib unionfind < queries.txt
	complib rmq --op min < sequence.txt
	complib dijkstra graph.yaml --from 0
	complib factor 36 97
	complib binom 10 3

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
