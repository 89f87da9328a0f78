package document

import (
	"sort"
	"strings"
)

// treeNode is one directory in the structure listing.
type treeNode struct {
	dirs  map[string]*treeNode
	files []string
}

func newTreeNode() *treeNode {
	return &treeNode{dirs: map[string]*treeNode{}}
}

func (n *treeNode) insert(relPath string) {
	segments := strings.Split(relPath, "/")
	cur := n
	for _, seg := range segments[:len(segments)-1] {
		child, ok := cur.dirs[seg]
		if !ok {
			child = newTreeNode()
			cur.dirs[seg] = child
		}
		cur = child
	}
	cur.files = append(cur.files, segments[len(segments)-1])
}

// StructureTree renders an ASCII tree of the entry paths rooted at root.
// The tree is navigation aid only; Parse never reads it.
func StructureTree(root string, paths []string) string {
	top := newTreeNode()
	for _, p := range paths {
		top.insert(p)
	}

	var b strings.Builder
	b.WriteString(root + "/\n")
	writeTree(&b, top, "")
	return strings.TrimRight(b.String(), "\n")
}

// writeTree emits one directory level: subdirectories first, then files,
// each group sorted case-insensitively.
func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	dirNames := make([]string, 0, len(n.dirs))
	for name := range n.dirs {
		dirNames = append(dirNames, name)
	}
	sort.Slice(dirNames, func(i, j int) bool {
		return strings.ToLower(dirNames[i]) < strings.ToLower(dirNames[j])
	})
	files := append([]string(nil), n.files...)
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})

	total := len(dirNames) + len(files)
	for i, name := range dirNames {
		connector, extension := "├── ", "│   "
		if i == total-1 {
			connector, extension = "└── ", "    "
		}
		b.WriteString(prefix + connector + name + "/\n")
		writeTree(b, n.dirs[name], prefix+extension)
	}
	for j, name := range files {
		connector := "├── "
		if len(dirNames)+j == total-1 {
			connector = "└── "
		}
		b.WriteString(prefix + connector + name + "\n")
	}
}
