// SPDX-License-Identifier: MIT

// Package traverse selects between the dfs and bfs engines and packages
// their visitation order for playback and logging.
package traverse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/walkview/bfs"
	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/dfs"
)

// ErrUnknownKind is returned for a traversal kind other than DFS or BFS.
var ErrUnknownKind = errors.New("traverse: unknown traversal kind")

// Kind names a traversal algorithm.
type Kind string

// Supported traversal kinds.
const (
	KindDFS Kind = "DFS"
	KindBFS Kind = "BFS"
)

// orderSeparator joins node IDs in a Result log line.
const orderSeparator = " -> "

// ParseKind accepts "dfs"/"bfs" in any letter case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindDFS:
		return KindDFS, nil
	case KindBFS:
		return KindBFS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Result is a computed visitation order.
type Result struct {
	Kind  Kind     `json:"kind"`
	Start string   `json:"start"`
	Order []string `json:"order"`
}

// Log renders the order the way the output panel shows it,
// e.g. "DFS: 0 -> 1 -> 3 -> 2".
func (r Result) Log() string {
	return string(r.Kind) + ": " + strings.Join(r.Order, orderSeparator)
}

// Run computes the visitation order of kind over adj from start.
// A start without an adjacency entry yields [start].
func Run(ctx context.Context, kind Kind, adj core.Adjacency, start string) (Result, error) {
	var (
		order []string
		err   error
	)
	switch kind {
	case KindDFS:
		var res *dfs.DFSResult
		res, err = dfs.DFS(adj, start, dfs.WithContext(ctx))
		if res != nil {
			order = res.Order
		}
	case KindBFS:
		var res *bfs.BFSResult
		res, err = bfs.BFS(adj, start, bfs.WithContext(ctx))
		if res != nil {
			order = res.Order
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return Result{}, fmt.Errorf("traverse: %s from %q: %w", kind, start, err)
	}

	return Result{Kind: kind, Start: start, Order: order}, nil
}

// CoerceStart turns a loosely typed start value into a node ID without any
// validation. Numbers are printed in their shortest decimal form, strings are
// kept verbatim, nil becomes "". Anything else goes through fmt.Sprint.
// An ID that names no node simply produces the single-node order.
func CoerceStart(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(x)
	}
}
