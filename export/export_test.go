package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symindex/export"
	"github.com/katalvlaran/symindex/freq"
	"github.com/katalvlaran/symindex/huffman"
	"github.com/katalvlaran/symindex/rbtree"
)

func rbOf(keys ...int) *rbtree.Tree[int] {
	tr := rbtree.New[int]()
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}

func outline(t *testing.T, src export.Source) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, export.Outline(&buf, src))
	return buf.String()
}

// loopSource is a two-node structure whose nodes point back at each other.
type loopSource struct{}

func (loopSource) Root() export.ID              { return 0 }
func (loopSource) Label(id export.ID) string    { return []string{"a", "b"}[id] }
func (loopSource) Color(export.ID) string       { return "black" }
func (loopSource) Left(id export.ID) export.ID  { return 1 - id }
func (loopSource) Right(id export.ID) export.ID { return id }

func TestOutline_Shapes(t *testing.T) {
	cases := []struct {
		name string
		keys []int
		want string
	}{
		{"empty", nil, ""},
		{"single", []int{7}, "└─ 7 (black)\n"},
		{"balanced", []int{10, 20, 30},
			"└─ 20 (black)\n" +
				"   ├─ 10 (red)\n" +
				"   └─ 30 (red)\n"},
		{"left only", []int{20, 10},
			"└─ 20 (black)\n" +
				"   ├─ 10 (red)\n"},
		{"right only", []int{10, 20},
			"└─ 10 (black)\n" +
				"   └─ 20 (red)\n"},
		{"nested left", []int{20, 10, 30, 5},
			"└─ 20 (black)\n" +
				"   ├─ 10 (black)\n" +
				"   │  ├─ 5 (red)\n" +
				"   └─ 30 (black)\n"},
		{"nested right", []int{10, 20, 30, 40},
			"└─ 20 (black)\n" +
				"   ├─ 10 (black)\n" +
				"   └─ 30 (black)\n" +
				"      └─ 40 (red)\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outline(t, export.FromRBTree(rbOf(tc.keys...))))
		})
	}
}

func TestOutline_VisitsEveryNodeOnce(t *testing.T) {
	keys := make([]int, 300)
	for i := range keys {
		keys[i] = i % 17
	}
	out := outline(t, export.FromRBTree(rbOf(keys...)))
	assert.Equal(t, len(keys), strings.Count(out, "\n"))
}

func TestExporters_TerminateOnCycles(t *testing.T) {
	assert.Equal(t, "└─ a (black)\n   ├─ b (black)\n", outline(t, loopSource{}))

	rec := export.RecordOf(loopSource{})
	require.NotNil(t, rec)
	require.NotNil(t, rec.Left)
	assert.Equal(t, "b", rec.Left.Key)
	assert.Nil(t, rec.Right)
	assert.Nil(t, rec.Left.Left)

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, loopSource{}))
	assert.Equal(t, 2, strings.Count(buf.String(), "[label="))
}

func TestExporters_NilSource(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.Outline(&buf, nil), export.ErrNilSource)
	assert.ErrorIs(t, export.WriteDOT(&buf, nil), export.ErrNilSource)
	assert.Nil(t, export.RecordOf(nil))
	assert.Equal(t, export.None, export.FromRBTree[int](nil).Root())
	assert.Equal(t, export.None, export.FromHuffman(nil).Root())
}

func TestRecord_NullChildrenAndRoundTrip(t *testing.T) {
	src := export.FromRBTree(rbOf(10, 20, 30, 40))
	rec := export.RecordOf(src)
	require.NotNil(t, rec)
	assert.Equal(t, "20", rec.Key)
	assert.Equal(t, "black", rec.Color)
	assert.Nil(t, rec.Right.Left)
	assert.Equal(t, "40", rec.Right.Right.Key)

	var buf bytes.Buffer
	require.NoError(t, export.WriteRecord(&buf, rec))
	text := buf.String()
	assert.Contains(t, text, "\n  \"key\": \"20\",\n")
	assert.Contains(t, text, `"left": null`)
	assert.Contains(t, text, `"right": null`)

	back, err := export.ReadRecord(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, rec, back)
	assert.Equal(t, outline(t, src), outline(t, export.FromRecord(back)))
}

func TestRecord_EmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteRecord(&buf, export.RecordOf(export.FromRBTree(rbOf()))))
	assert.Equal(t, "null\n", buf.String())

	back, err := export.ReadRecord(&buf)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestReadRecord_Errors(t *testing.T) {
	_, err := export.ReadRecord(strings.NewReader(`{"key": "a", "colour": "red"}`))
	assert.Error(t, err)
	_, err = export.ReadRecord(strings.NewReader(`{"key": `))
	assert.Error(t, err)
}

func TestWriteDOT_RBTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, export.FromRBTree(rbOf(10, 20, 30)), export.WithGraphName("RBTree")))
	want := `digraph RBTree {
  node [shape=circle, style=filled, fontname="Arial"];
  n2 [label="20", fillcolor="black", fontcolor="white"];
  n2 -> n1;
  n2 -> n3;
  n1 [label="10", fillcolor="red", fontcolor="white"];
  n3 [label="30", fillcolor="red", fontcolor="white"];
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDOT_DuplicateKeysStayDistinct(t *testing.T) {
	tr := rbtree.New[string]()
	for _, k := range []string{"GT3_17", "GT3_17", "GT3_17"} {
		tr.Insert(k)
	}
	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, export.FromRBTree(tr)))
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `label="GT3_17"`))
	assert.Equal(t, 2, strings.Count(out, "->"))
}

func TestWriteDOT_EscapingAndNames(t *testing.T) {
	tr := rbtree.New[string]()
	tr.Insert(`say "hi"`)

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, export.FromRBTree(tr), export.WithGraphName("my graph")))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph \"my graph\" {\n"))
	assert.Contains(t, out, `label="say \"hi\""`)

	buf.Reset()
	require.NoError(t, export.WriteDOT(&buf, export.FromRBTree(rbOf()), export.WithGraphName("")))
	assert.Equal(t, "digraph Tree {\n  node [shape=circle, style=filled, fontname=\"Arial\"];\n}\n", buf.String())
}

func TestFromHuffman_LabelsAndEdges(t *testing.T) {
	root, err := huffman.BuildTree(freq.Count([]string{"A", "B", "A"}))
	require.NoError(t, err)
	src := export.FromHuffman(root)

	assert.Equal(t, "└─ 3 (internal)\n   ├─ B (leaf)\n   └─ A (leaf)\n", outline(t, src))

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, src, export.WithEdgeLabels()))
	assert.Contains(t, buf.String(), "n0 -> n1 [label=\"0\"];\n  n0 -> n2 [label=\"1\"];\n")
	assert.Contains(t, buf.String(), `fillcolor="palegreen"`)
}

func TestWriteCodes(t *testing.T) {
	codes := huffman.CodeMap{"B": "0", "A": "1", "<x>": "10"}
	var buf bytes.Buffer
	require.NoError(t, export.WriteCodes(&buf, codes))
	assert.Equal(t, "{\n  \"<x>\": \"10\",\n  \"A\": \"1\",\n  \"B\": \"0\"\n}\n", buf.String())

	back, err := export.ReadCodes(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]string(codes), back)

	buf.Reset()
	require.NoError(t, export.WriteCodes(&buf, nil, export.WithIndent("")))
	assert.Equal(t, "{}\n", buf.String())
}
