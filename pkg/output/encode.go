package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/types"
)

// jsonObject marshals as a JSON object with keys in insertion order.
type jsonObject struct {
	keys   []string
	values []types.Value
}

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[i].Interface())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func recordObject(rec *types.Record) jsonObject {
	obj := jsonObject{}
	rec.Each(func(k string, v types.Value) {
		obj.keys = append(obj.keys, k)
		obj.values = append(obj.values, v)
	})
	return obj
}

func tableJSON(t *types.Table) []jsonObject {
	keys := t.ColumnNames()
	rows := make([]jsonObject, 0, t.Len())
	for _, row := range t.Rows {
		rows = append(rows, jsonObject{keys: keys, values: row})
	}
	return rows
}

func recordJSON(rec *types.Record) jsonObject { return recordObject(rec) }

func recordsJSON(recs []*types.Record) []jsonObject {
	out := make([]jsonObject, 0, len(recs))
	for _, rec := range recs {
		if rec != nil {
			out = append(out, recordObject(rec))
		}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode json")
	}
	return nil
}

func scalarNode(v types.Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
	switch v.Kind() {
	case types.KindNull:
		n.Tag, n.Value = "!!null", "null"
	case types.KindInt:
		n.Tag = "!!int"
	case types.KindFloat:
		n.Tag = "!!float"
		if !strings.ContainsAny(n.Value, ".eEnN") {
			n.Value += ".0"
		}
	case types.KindBool:
		n.Tag = "!!bool"
	default:
		n.Tag = "!!str"
	}
	return n
}

func mappingNode(keys []string, values []types.Value) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range keys {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			scalarNode(values[i]),
		)
	}
	return m
}

func recordMapping(rec *types.Record) *yaml.Node {
	obj := recordObject(rec)
	return mappingNode(obj.keys, obj.values)
}

func tableYAML(t *types.Table) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	keys := t.ColumnNames()
	for _, row := range t.Rows {
		seq.Content = append(seq.Content, mappingNode(keys, row))
	}
	return seq
}

func recordYAML(rec *types.Record) *yaml.Node { return recordMapping(rec) }

func recordsYAML(recs []*types.Record) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, rec := range recs {
		if rec != nil {
			seq.Content = append(seq.Content, recordMapping(rec))
		}
	}
	return seq
}

func writeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode yaml")
	}
	return nil
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

// appendFields writes one <field name="..."> per key; nulls carry null="true".
func appendFields(parent *etree.Element, keys []string, values []types.Value) {
	for i, k := range keys {
		f := parent.CreateElement("field")
		f.CreateAttr("name", k)
		if values[i].IsNull() {
			f.CreateAttr("null", "true")
			continue
		}
		f.SetText(values[i].String())
	}
}

func tableXML(t *types.Table) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("table")
	cols := root.CreateElement("columns")
	for _, c := range t.Columns {
		cols.CreateElement("column").SetText(c.Name)
	}
	keys := t.ColumnNames()
	for _, row := range t.Rows {
		appendFields(root.CreateElement("row"), keys, row)
	}
	return doc
}

func recordXML(rec *types.Record) *etree.Document {
	doc := newXMLDocument()
	obj := recordObject(rec)
	appendFields(doc.CreateElement("record"), obj.keys, obj.values)
	return doc
}

func recordsXML(recs []*types.Record) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("records")
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		obj := recordObject(rec)
		appendFields(root.CreateElement("record"), obj.keys, obj.values)
	}
	return doc
}

func writeXML(w io.Writer, doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode xml")
	}
	return nil
}
