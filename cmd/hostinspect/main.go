// Command hostinspect prints a bordered table of host facts: operating
// system identity and install date, CPU core counts, GPU names, and RAM
// totals. It takes no arguments.
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Augustwise/hostinspect/internal/collectors"
	"github.com/Augustwise/hostinspect/internal/platform"
	"github.com/Augustwise/hostinspect/internal/render"
	"github.com/Augustwise/hostinspect/internal/run"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hostinspect: ")

	c := collectors.New(platform.Detect(), run.CommandRunner{})
	report, err := c.Collect(context.Background())
	if err != nil {
		log.Fatalf("%v", err)
	}

	for _, line := range render.Table(rows(report), &render.DefaultHeader) {
		fmt.Println(line)
	}
}

func rows(r *collectors.Report) []render.Row {
	installed := "Unknown"
	if r.HasInstall {
		installed = render.LocalTime(r.InstallTime)
	}
	gpus := "Unknown"
	if len(r.GPUs) > 0 {
		gpus = strings.Join(r.GPUs, ", ")
	}
	return []render.Row{
		{Label: "Operating system", Value: r.OSName},
		{Label: "OS install date", Value: installed},
		{Label: "Physical cores", Value: strconv.Itoa(r.PhysicalCores)},
		{Label: "Logical cores", Value: strconv.Itoa(r.LogicalCores)},
		{Label: "GPU(s)", Value: gpus},
		{Label: "Total RAM", Value: render.GB(r.TotalRAM)},
		{Label: "Free RAM", Value: render.MB(r.FreeRAM)},
	}
}
