package weft

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/olekukonko/tablewriter"
)

func (s cacheState) String() string {
	switch s {
	case cacheClean:
		return "clean"
	case cacheCheck:
		return "check"
	case cacheDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// DumpStats renders a table of every live node: identity, version, cache
// state and edge counts. Intended for debugging and benchmark output.
func (g *Graph) DumpStats(w io.Writer) {
	nodes := g.sortedNodes()
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"id", "kind", "name", "version", "state", "deps", "subs"})
	for _, n := range nodes {
		tbl.Append([]string{
			fmt.Sprint(n.id),
			n.kind.String(),
			n.name,
			fmt.Sprint(n.version),
			n.state.String(),
			fmt.Sprint(n.depCount),
			fmt.Sprint(n.subs.live),
		})
	}
	tbl.Render()
}

// Fingerprint hashes the live topology: node identities, kinds, names and
// dependency edges. Two graphs built by the same sequence of operations hash
// identically; any added, removed or re-wired node changes the digest.
// Versions and values are excluded so a fingerprint survives writes.
func (g *Graph) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}
	for _, n := range g.sortedNodes() {
		writeU64(n.id)
		writeU64(uint64(n.kind))
		writeU64(xxhash.Sum64String(n.name))
		n.subs.forEach(func(o observer) {
			writeU64(o.base().id)
		})
	}
	return d.Sum64()
}

func (g *Graph) sortedNodes() []*node {
	nodes := make([]*node, len(g.nodes))
	copy(nodes, g.nodes)
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].id < nodes[j].id
	})
	return nodes
}
