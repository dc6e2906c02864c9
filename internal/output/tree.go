package output

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children []*treeNode
}

func (n *treeNode) findOrCreate(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	child := &treeNode{name: name}
	n.children = append(n.children, child)
	return child
}

// PrintTree renders paths (e.g. the files that had errors) as a tree under
// title. Nothing is printed for an empty list.
func PrintTree(w io.Writer, title string, paths []string) {
	if len(paths) == 0 {
		return
	}

	seen := make(map[string]bool, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.Trim(filepath.ToSlash(p), "/")
		if p != "" && !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}
	sort.Strings(unique)

	root := &treeNode{name: "/"}
	for _, p := range unique {
		node := root
		for _, part := range strings.Split(p, "/") {
			node = node.findOrCreate(part)
		}
	}

	start, base := collapse(root)
	fmt.Fprintf(w, "\n  %s (under /%s):\n", title, base)
	printChildren(w, start, "  ")
}

// collapse skips the chain of single-child directories shared by every
// path so the tree starts where the paths diverge. It returns the new
// start node and the skipped path.
func collapse(n *treeNode) (*treeNode, string) {
	var skipped []string
	for len(n.children) == 1 && len(n.children[0].children) > 0 {
		child := n.children[0]
		if len(child.children) == 1 && len(child.children[0].children) == 0 {
			break
		}
		skipped = append(skipped, child.name)
		n = child
	}
	return n, strings.Join(skipped, "/")
}

func printChildren(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		isLast := i == len(node.children)-1
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, child.name)
		nextPrefix := prefix + "│   "
		if isLast {
			nextPrefix = prefix + "    "
		}
		printChildren(w, child, nextPrefix)
	}
}
