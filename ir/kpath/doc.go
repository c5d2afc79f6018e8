// Package kpath provides the paths used to address positions in a form tree.
//
// A KPath is a linked list of segments. Each segment is either a field of a
// keyed container or an index into a sequence:
//
//   - "a.b" : field b of field a
//   - "a[0]" : element 0 of field a
//   - "[2].name" : field name of element 2 of a sequence root
//   - "'x.y'.z" : fields whose names need quoting are single quoted
//
// The empty path is represented by a nil *KPath and addresses the root.
package kpath
