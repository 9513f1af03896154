package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
