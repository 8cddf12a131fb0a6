// Command contigsampler builds labeled contig datasets from genome assemblies.
package main

import (
	"contigsampler/internal/app"
	"contigsampler/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
