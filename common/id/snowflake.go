package id

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node ids per binary. Every process that writes rows needs its own node so
// generated ids never collide.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
	NodeCLI    int64 = 3
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}

// Parse reads an id from its decimal string form, as it appears in URLs and
// JSON bodies.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return v, nil
}

// Format renders an id the way API responses carry it.
func Format(v int64) string {
	return strconv.FormatInt(v, 10)
}
