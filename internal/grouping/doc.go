// Package grouping turns flat, dot-keyed attribute maps into an ordered tree
// of titled nodes.
//
// Device inventory and artifact descriptors report their installed software as
// flat scalar attributes such as `rootfs-image.version` or
// `gateway.G13.rootfs-image.checksum`. A Grouper resolves every key through an
// ordered list of matchers (reserved names, fixed prefixes, container
// entities, generic `<group>.<property>` keys) and places the value into the
// content of the node the key resolves to, creating nodes lazily by title.
//
// Grouping is a pure, total function: malformed or unrecognized keys are
// dropped silently, the input is never mutated, and every call builds a fresh
// tree. A Grouper is immutable after construction and safe for concurrent use.
package grouping
