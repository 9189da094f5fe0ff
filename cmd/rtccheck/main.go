package main

import (
	"github.com/christyanmind/nuttx/cmd/rtccheck/cmd"
)

func main() {
	cmd.Execute()
}
