package main

import "github.com/fatih/color"

// Color functions for emphasising CLI output.
var (
	emph = color.New(color.FgBlue, color.Bold).SprintFunc()
	warn = color.New(color.FgYellow, color.Bold).SprintFunc()
)
