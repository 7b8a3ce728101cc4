package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"
)

// PrintTree renders slash separated file paths sharing one root directory as a tree.
// Repeated paths are shown once, at their first position.
func PrintTree(w io.Writer, files []string) error {
	if len(files) == 0 {
		return nil
	}

	var root *gtree.Node
	var rootName string
	nodes := make(map[string]*gtree.Node)
	for _, file := range files {
		segments := strings.Split(file, "/")

		// * construct root on first file
		if root == nil {
			rootName = segments[0]
			root = gtree.NewRoot(rootName)
		}
		if segments[0] != rootName {
			return fmt.Errorf("file %s is outside of root %s", file, rootName)
		}

		// * attach each segment once
		parent := root
		key := rootName
		for _, segment := range segments[1:] {
			key = key + "/" + segment
			node, ok := nodes[key]
			if !ok {
				node = parent.Add(segment)
				nodes[key] = node
			}
			parent = node
		}
	}

	return gtree.OutputFromRoot(w, root)
}
