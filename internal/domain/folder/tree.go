package folder

// Parent pointers are user-mutable and are not guaranteed to be acyclic
// in pre-existing data, so every walk in this file tracks visited ids and
// stops on repeat instead of recursing unboundedly.

// Subtree returns rootID plus the ids of all folders below it, in
// breadth-first order. parents maps folder id to its parent id (nil = root).
func Subtree(rootID string, parents map[string]*string) []string {
	children := make(map[string][]string, len(parents))
	for childID, parentID := range parents {
		if parentID != nil {
			children[*parentID] = append(children[*parentID], childID)
		}
	}

	visited := map[string]bool{rootID: true}
	result := []string{rootID}
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, childID := range children[current] {
			if visited[childID] {
				continue
			}
			visited[childID] = true
			result = append(result, childID)
			queue = append(queue, childID)
		}
	}
	return result
}

// WouldCycle reports whether reparenting folderID under newParentID would
// create a cycle, by walking up from the proposed parent to the root.
func WouldCycle(folderID, newParentID string, parents map[string]*string) bool {
	if folderID == newParentID {
		return true
	}
	visited := make(map[string]bool)
	current := newParentID
	for {
		if current == folderID {
			return true
		}
		if visited[current] {
			// Existing cycle above the proposed parent; the new edge
			// does not reach folderID, but refuse it anyway.
			return true
		}
		visited[current] = true
		parent, ok := parents[current]
		if !ok || parent == nil {
			return false
		}
		current = *parent
	}
}
