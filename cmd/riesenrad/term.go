package main

import (
	"fmt"
	"os"

	"github.com/karlmutch/errors"
)

var (
	errV = os.Stderr
)

// runErrors prints the errors produced by the services until quitC is
// closed
func runErrors(errorC <-chan errors.Error, quitC <-chan struct{}) {
	for {
		select {
		case err := <-errorC:
			if errV != nil {
				fmt.Fprintln(errV, err.Error())
			}
		case <-quitC:
			return
		}
	}
}
