package index

import "strings"

// BuildTree folds a flat list of relative paths (forward slashes) into one
// nested DirectoryNode. When a segment already holds a file marker but a later
// path needs a directory there (or the other way around), the later insertion
// wins; aliased filesystems that could produce such collisions are out of
// scope.
func BuildTree(relativePaths []string) DirectoryNode {
	root := DirectoryNode{}

	for _, relativePath := range relativePaths {
		segments := strings.Split(relativePath, "/")
		node := root

		for i, segment := range segments {
			if segment == "" {
				continue
			}
			if i == len(segments)-1 {
				node[segment] = FileMarker
				continue
			}

			child, ok := node[segment].(DirectoryNode)
			if !ok {
				child = DirectoryNode{}
				node[segment] = child
			}
			node = child
		}
	}

	return root
}

// CountFiles returns the number of file markers reachable in the tree.
func (n DirectoryNode) CountFiles() int {
	count := 0
	for _, value := range n {
		switch v := value.(type) {
		case DirectoryNode:
			count += v.CountFiles()
		case string:
			if v == FileMarker {
				count++
			}
		}
	}
	return count
}
