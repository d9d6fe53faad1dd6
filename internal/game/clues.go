package game

// ClueCatalog is an unbalanced binary search tree of collected clues, ordered
// by plain byte-wise string comparison. Sorted insertion order degrades it to
// a list; nothing rebalances it.
type ClueCatalog struct {
	root *clueNode
	size int
}

type clueNode struct {
	text  string
	left  *clueNode
	right *clueNode
}

func NewClueCatalog() *ClueCatalog {
	return &ClueCatalog{}
}

// Insert adds a clue at its ordered position. It returns false when the clue
// was already present, leaving the tree untouched.
func (c *ClueCatalog) Insert(text string) bool {
	var added bool
	c.root, added = insertClue(c.root, text)
	if added {
		c.size++
	}
	return added
}

func insertClue(n *clueNode, text string) (*clueNode, bool) {
	if n == nil {
		return &clueNode{text: text}, true
	}
	var added bool
	switch {
	case text < n.text:
		n.left, added = insertClue(n.left, text)
	case text > n.text:
		n.right, added = insertClue(n.right, text)
	}
	return n, added
}

func (c *ClueCatalog) Contains(text string) bool {
	n := c.root
	for n != nil {
		switch {
		case text < n.text:
			n = n.left
		case text > n.text:
			n = n.right
		default:
			return true
		}
	}
	return false
}

func (c *ClueCatalog) Len() int { return c.size }

// InOrder visits every clue in ascending order.
func (c *ClueCatalog) InOrder(visit func(text string)) {
	inOrder(c.root, visit)
}

func inOrder(n *clueNode, visit func(string)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.text)
	inOrder(n.right, visit)
}

// Sorted returns the clues in ascending order.
func (c *ClueCatalog) Sorted() []string {
	out := make([]string, 0, c.size)
	c.InOrder(func(text string) {
		out = append(out, text)
	})
	return out
}

// Height is the number of nodes on the longest root-to-leaf path.
func (c *ClueCatalog) Height() int {
	return height(c.root)
}

func height(n *clueNode) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
