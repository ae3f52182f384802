package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Describe renders a table summarizing the scene's settings, geometry and BVH
func Describe(s *Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Property", "Value"})

	c := s.Config
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", c.Width, c.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprint(c.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprint(c.MaxDepth)})
	table.Append([]string{"Shutter", fmt.Sprintf("%g..%g", c.Time0, c.Time1)})
	table.Append([]string{"Primitives", fmt.Sprint(s.Primitives)})
	table.Append([]string{"Unbounded", fmt.Sprint(s.Unbounded)})
	table.Append([]string{"Light targets", fmt.Sprint(s.Lights.Len())})

	if s.BVH != nil {
		stats := s.BVH.Stats()
		box := s.BVH.Box
		table.Append([]string{"BVH nodes", fmt.Sprint(stats.Nodes)})
		table.Append([]string{"BVH leaves", fmt.Sprint(stats.Leaves)})
		table.Append([]string{"BVH depth (max/avg)", fmt.Sprintf("%d / %.2f", stats.MaxDepth, stats.AvgDepth)})
		table.Append([]string{"Bounds", fmt.Sprintf("(%.1f, %.1f, %.1f) - (%.1f, %.1f, %.1f)",
			box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)})
	}

	table.Render()
	return buf.String()
}
