// seehuhn.de/go/curve - integer Bézier curves and adaptive flattening
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package curve

import (
	"iter"
	"math"
)

// emptyRef marks the ends of a linkList.
const emptyRef = math.MaxUint32

type node[T any] struct {
	prev, next uint32
	item       T
}

// linkList is a doubly linked list stored in a flat slice.
//
// Nodes are only ever appended, so indices stay valid for the lifetime of
// the list.  The slice order is unrelated to the list order once a node
// has been split; traversal must follow the next links from the head,
// which is always index 0.
type linkList[T any] struct {
	nodes []node[T]
}

func newLinkList[T any](items []T) *linkList[T] {
	l := &linkList[T]{
		nodes: make([]node[T], 0, max(2*len(items), 16)),
	}
	if len(items) == 0 {
		return l
	}

	for i, item := range items {
		l.nodes = append(l.nodes, node[T]{
			prev: uint32(i - 1), // wraps to emptyRef for i == 0
			next: uint32(i + 1),
			item: item,
		})
	}
	l.nodes[len(l.nodes)-1].next = emptyRef

	return l
}

func (l *linkList[T]) len() int {
	return len(l.nodes)
}

func (l *linkList[T]) get(index uint32) *node[T] {
	return &l.nodes[index]
}

// splitAt replaces the item at index by a and inserts a new node holding
// b directly after it.  The indices of both nodes are returned.
func (l *linkList[T]) splitAt(index uint32, a, b T) (uint32, uint32) {
	newIndex := uint32(len(l.nodes))

	n := &l.nodes[index]
	next := n.next
	n.next = newIndex
	n.item = a

	l.nodes = append(l.nodes, node[T]{
		prev: index,
		next: next,
		item: b,
	})

	if next != emptyRef {
		l.nodes[next].prev = newIndex
	}

	return index, newIndex
}

// walk iterates over the list in link order, starting at head.
func (l *linkList[T]) walk(head uint32) iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		if len(l.nodes) == 0 {
			return
		}
		for i := head; i != emptyRef; i = l.nodes[i].next {
			if !yield(i, l.nodes[i].item) {
				return
			}
		}
	}
}
