package main

import (
	"fmt"
	"strings"
)

type Item struct {
	ID    string
	Title string
	Qty   int
}

type Document struct {
	Name  string
	Items []Item
}

func (d *Document) Add(it Item) {
	d.Items = append(d.Items, it)
}

func (d *Document) Titles() string {
	out := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Title)
	}
	return strings.Join(out, ", ")
}

func main() {
	doc := &Document{Name: "invoice"}
	doc.Add(Item{ID: "a1", Title: "Widget", Qty: 3})
	doc.Add(Item{ID: "b2", Title: "Gadget", Qty: 1})
	fmt.Println(doc.Name, doc.Titles())
}
