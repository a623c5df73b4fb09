package mla

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/apfind/internal/resource"
)

const (
	// DefaultFanout is the default number of entries per leaf and children
	// per internal node.
	DefaultFanout = 1024
	// MinFanout is the smallest fan-out that still forms a tree.
	MinFanout = 2
)

var (
	// ErrInvalidFanout is returned by New for a fan-out below MinFanout.
	ErrInvalidFanout = errors.New("mla: invalid fanout")
	// ErrInvalidKey is returned when I is not below J or is negative.
	ErrInvalidKey = errors.New("mla: invalid key")
)

type child struct {
	first Entry
	node  *node
}

type node struct {
	level    int
	parent   *node
	entries  []Entry // level 0 only
	children []child // level > 0 only
}

func (n *node) firstEntry() Entry {
	if n.level == 0 {
		return n.entries[0]
	}
	return n.children[0].first
}

// Stats describes the shape of an Array.
type Stats struct {
	Entries int
	Nodes   int
	Leaves  int
	Depth   int
	// EndKeys is the number of distinct J values holding at least one entry.
	EndKeys uint64
	// Bytes is the memory charged for nodes.
	Bytes int64
}

// Array is the multi-level array.
type Array struct {
	fanout int
	root   *node
	tail   *node // rightmost leaf
	last   Entry
	n      int
	nodes  int
	leaves int
	bytes  int64
	ends   *roaring64.Bitmap
	rc     *resource.Controller
}

// Option configures an Array.
type Option func(*Array)

// WithFanout sets the node fan-out.
func WithFanout(f int) Option {
	return func(a *Array) {
		a.fanout = f
	}
}

// WithResourceController charges node allocations against rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(a *Array) {
		a.rc = rc
	}
}

// New creates an empty Array.
func New(optFns ...Option) (*Array, error) {
	a := &Array{
		fanout: DefaultFanout,
		ends:   roaring64.New(),
	}
	for _, fn := range optFns {
		fn(a)
	}
	if a.fanout < MinFanout {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFanout, a.fanout)
	}
	return a, nil
}

func (a *Array) leafBytes() int64 {
	return int64(a.fanout) * int64(unsafe.Sizeof(Entry{}))
}

func (a *Array) internalBytes() int64 {
	return int64(a.fanout) * int64(unsafe.Sizeof(child{}))
}

func (a *Array) newNode(level int, parent *node) *node {
	n := &node{level: level, parent: parent}
	if level == 0 {
		n.entries = make([]Entry, 0, a.fanout)
		a.leaves++
		a.bytes += a.leafBytes()
	} else {
		n.children = make([]child, 0, a.fanout)
		a.bytes += a.internalBytes()
	}
	a.nodes++
	return n
}

// Append adds an entry at the tail.
//
// The key must not order before the previously appended key. All nodes the
// append needs are reserved up front, so a refused reservation returns an
// error wrapping resource.ErrMemoryLimitExceeded and leaves a unchanged.
func (a *Array) Append(i, j, length int) error {
	k := Key{I: i, J: j}
	if i < 0 || i >= j {
		return fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}
	if a.n > 0 && k.Compare(a.last.Key) < 0 {
		return &OrderError{Last: a.last.Key, Next: k}
	}
	e := Entry{Key: k, Len: length}

	if a.root == nil {
		if err := a.rc.AcquireMemory(a.leafBytes()); err != nil {
			return err
		}
		a.root = a.newNode(0, nil)
		a.tail = a.root
	}

	leaf := a.tail
	if len(leaf.entries) == a.fanout {
		// Find the lowest ancestor with a free child slot.
		up := leaf.parent
		for up != nil && len(up.children) == a.fanout {
			up = up.parent
		}

		// The chain below up (or below a new root) has one node per level.
		levels := a.root.level + 1
		if up != nil {
			levels = up.level
		}
		need := int64(levels-1)*a.internalBytes() + a.leafBytes()
		if up == nil {
			need += a.internalBytes()
		}
		if err := a.rc.AcquireMemory(need); err != nil {
			return err
		}

		if up == nil {
			old := a.root
			up = a.newNode(old.level+1, nil)
			up.children = append(up.children, child{first: old.firstEntry(), node: old})
			old.parent = up
			a.root = up
		}

		for up.level > 0 {
			next := a.newNode(up.level-1, up)
			up.children = append(up.children, child{first: e, node: next})
			up = next
		}
		leaf = up
		a.tail = leaf
	}

	leaf.entries = append(leaf.entries, e)
	a.last = e
	a.n++
	a.ends.Add(uint64(j))
	return nil
}

// Search returns the length stored for (i, j), or DefaultLength if none.
func (a *Array) Search(i, j int) int {
	if a.root == nil || j < 0 || !a.ends.Contains(uint64(j)) {
		return DefaultLength
	}
	k := Key{I: i, J: j}

	n := a.root
	for n.level > 0 {
		// Largest child whose first key is <= k.
		idx, found := slices.BinarySearchFunc(n.children, k, func(c child, k Key) int {
			return c.first.Compare(k)
		})
		if found {
			return n.children[idx].first.Len
		}
		if idx == 0 {
			return DefaultLength
		}
		n = n.children[idx-1].node
	}

	idx, found := slices.BinarySearchFunc(n.entries, k, func(e Entry, k Key) int {
		return e.Compare(k)
	})
	if !found {
		return DefaultLength
	}
	return n.entries[idx].Len
}

// Len returns the number of entries.
func (a *Array) Len() int {
	return a.n
}

// Depth returns the number of levels (0 when empty).
func (a *Array) Depth() int {
	if a.root == nil {
		return 0
	}
	return a.root.level + 1
}

// Nodes returns the number of allocated nodes.
func (a *Array) Nodes() int {
	return a.nodes
}

// Fanout returns the configured fan-out.
func (a *Array) Fanout() int {
	return a.fanout
}

// Stats returns a snapshot of the array shape.
func (a *Array) Stats() Stats {
	return Stats{
		Entries: a.n,
		Nodes:   a.nodes,
		Leaves:  a.leaves,
		Depth:   a.Depth(),
		EndKeys: a.ends.GetCardinality(),
		Bytes:   a.bytes,
	}
}

// Walk calls fn for every entry in key order until fn returns false.
func (a *Array) Walk(fn func(Entry) bool) {
	if a.root == nil {
		return
	}
	walk(a.root, fn)
}

func walk(n *node, fn func(Entry) bool) bool {
	if n.level == 0 {
		for _, e := range n.entries {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !walk(c.node, fn) {
			return false
		}
	}
	return true
}
