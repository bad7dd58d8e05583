package panels

import (
	"fmt"
	"sort"
	"strconv"

	"chartqa-viewer/internal/dataset"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// qaNode is one rendered node of the QA document tree.
type qaNode struct {
	text     string
	children []string
}

// QAPanel renders the sample's QA document as an expandable tree.
type QAPanel struct {
	tree    *widget.Tree
	content fyne.CanvasObject
	nodes   map[string]qaNode
}

// NewQAPanel creates the QA annotation panel.
func NewQAPanel() *QAPanel {
	qp := &QAPanel{
		nodes: make(map[string]qaNode),
	}

	qp.tree = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			return qp.nodes[uid].children
		},
		func(uid widget.TreeNodeID) bool {
			return len(qp.nodes[uid].children) > 0
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(qp.nodes[uid].text)
		},
	)

	qp.content = container.NewBorder(
		widget.NewLabelWithStyle("QA (JSON)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		qp.tree,
	)
	return qp
}

// Container returns the panel container.
func (qp *QAPanel) Container() fyne.CanvasObject {
	return qp.content
}

// SetAnnotation replaces the displayed document.
func (qp *QAPanel) SetAnnotation(a dataset.Annotation) {
	qp.nodes = make(map[string]qaNode)

	switch a.Value.(type) {
	case map[string]any, []any:
		qp.insert("", "", a.Value)
	default:
		// Scalar documents get a single wrapped leaf; the tree root itself
		// is never displayed.
		qp.nodes[""] = qaNode{children: []string{"/value"}}
		qp.nodes["/value"] = qaNode{text: formatScalar(a.Value)}
	}

	qp.tree.Refresh()
	qp.tree.OpenAllBranches()
}

// insert records the node for uid and recurses into its children.
func (qp *QAPanel) insert(uid, label string, v any) {
	switch val := v.(type) {
	case map[string]any:
		n := qaNode{text: label}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := uid + "/" + k
			n.children = append(n.children, child)
			qp.insert(child, k, val[k])
		}
		qp.nodes[uid] = n
	case []any:
		n := qaNode{text: label}
		for i, item := range val {
			child := fmt.Sprintf("%s/%d", uid, i)
			n.children = append(n.children, child)
			qp.insert(child, fmt.Sprintf("[%d]", i), item)
		}
		qp.nodes[uid] = n
	default:
		qp.nodes[uid] = qaNode{text: fmt.Sprintf("%s: %s", label, formatScalar(v))}
	}
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
