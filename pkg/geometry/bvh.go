package geometry

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when building a BVH with no primitives
	ErrEmptyBVH = errors.New("bvh: no primitives")
	// ErrUnboundedPrimitive is returned when a primitive has no bounding box
	ErrUnboundedPrimitive = errors.New("bvh: primitive has no bounding box")
	// ErrInvalidBounds is returned when a primitive reports an inverted or NaN box
	ErrInvalidBounds = errors.New("bvh: invalid bounding box")
)

// BVHNode is a node of a Bounding Volume Hierarchy. Children are either
// further nodes or the primitives themselves.
type BVHNode struct {
	noLightSampling
	Box   core.AABB
	Left  Primitive
	Right Primitive
}

// emptyLeaf pads a node built from a single primitive. It never hits.
type emptyLeaf struct {
	noLightSampling
	box core.AABB
}

func (e emptyLeaf) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return nil, false
}

func (e emptyLeaf) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return e.box, true
}

func (emptyLeaf) isPrimitive() {}

type boxedPrimitive struct {
	prim Primitive
	box  core.AABB
}

// NewBVH builds a hierarchy over primitives for the shutter interval
// [time0, time1], splitting each level with the surface area heuristic.
// The input slice is not modified.
func NewBVH(primitives []Primitive, time0, time1 float64) (*BVHNode, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]boxedPrimitive, len(primitives))
	for i, p := range primitives {
		box, ok := p.BoundingBox(time0, time1)
		if !ok {
			return nil, errors.Wrapf(ErrUnboundedPrimitive, "primitive %d", i)
		}
		if !box.IsValid() {
			return nil, errors.Wrapf(ErrInvalidBounds, "primitive %d: %v", i, box)
		}
		items[i] = boxedPrimitive{prim: p, box: box}
	}

	return buildBVH(items), nil
}

func buildBVH(items []boxedPrimitive) *BVHNode {
	box := items[0].box
	for _, item := range items[1:] {
		box = box.Union(item.box)
	}

	if len(items) == 1 {
		return &BVHNode{Box: box, Left: items[0].prim, Right: emptyLeaf{box: box}}
	}

	axis := box.LongestAxis()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Index(axis) < items[j].box.Min.Index(axis)
	})

	split := sahSplit(items)
	return &BVHNode{
		Box:   box,
		Left:  buildChild(items[:split+1]),
		Right: buildChild(items[split+1:]),
	}
}

// buildChild turns a single-element side straight into a leaf
func buildChild(items []boxedPrimitive) Primitive {
	if len(items) == 1 {
		return items[0].prim
	}
	return buildBVH(items)
}

// sahSplit returns the index i minimizing
// i*area(items[0..i]) + (n-i-1)*area(items[i+1..n-1]).
func sahSplit(items []boxedPrimitive) int {
	n := len(items)

	// leftArea[i] covers items[0..i], rightArea[i] covers items[i..n-1]
	leftArea := make([]float64, n)
	rightArea := make([]float64, n)

	leftBox := items[0].box
	leftArea[0] = leftBox.SurfaceArea()
	for i := 1; i < n; i++ {
		leftBox = leftBox.Union(items[i].box)
		leftArea[i] = leftBox.SurfaceArea()
	}

	rightBox := items[n-1].box
	rightArea[n-1] = rightBox.SurfaceArea()
	for i := n - 2; i >= 0; i-- {
		rightBox = rightBox.Union(items[i].box)
		rightArea[i] = rightBox.SurfaceArea()
	}

	best := 0
	bestCost := 0.0
	for i := 0; i < n-1; i++ {
		cost := float64(i)*leftArea[i] + float64(n-i-1)*rightArea[i+1]
		if i == 0 || cost < bestCost {
			best = i
			bestCost = cost
		}
	}
	return best
}

// Hit tests the node box, then both children, keeping the closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, random)
	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, closestSoFar, random)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}

func (*BVHNode) isPrimitive() {}

// Leaves returns every primitive stored in the hierarchy, in traversal order
func (n *BVHNode) Leaves() []Primitive {
	var leaves []Primitive
	var walk func(p Primitive)
	walk = func(p Primitive) {
		switch node := p.(type) {
		case *BVHNode:
			walk(node.Left)
			walk(node.Right)
		case emptyLeaf:
		default:
			leaves = append(leaves, p)
		}
	}
	walk(n)
	return leaves
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // internal nodes
	Leaves   int // primitives stored
	MaxDepth int
	AvgDepth float64
}

// Stats walks the hierarchy and reports its shape
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	totalDepth := 0
	var walk func(p Primitive, depth int)
	walk = func(p Primitive, depth int) {
		switch node := p.(type) {
		case *BVHNode:
			stats.Nodes++
			walk(node.Left, depth+1)
			walk(node.Right, depth+1)
		case emptyLeaf:
		default:
			stats.Leaves++
			totalDepth += depth
			stats.MaxDepth = max(stats.MaxDepth, depth)
		}
	}
	walk(n, 0)
	if stats.Leaves > 0 {
		stats.AvgDepth = float64(totalDepth) / float64(stats.Leaves)
	}
	return stats
}
