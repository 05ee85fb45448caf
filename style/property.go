/*
Package style holds CSS style properties and converts them to the
configuration of flex containers and flex items.

Properties are kept as raw strings, grouped by topic, and converted on
demand. Conversions return result.Result values, as CSS input comes from
documents and may be malformed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("flexbox.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	flex-direction: column
//
// a property value of "column" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey.
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(strings.TrimSpace(string(p))))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.Get(key); !exists {
		pg.Set(key, p)
	}
}

// Cascade finds the ancesting PropertyGroup containing the given property-key,
// or nil.
func (pg *PropertyGroup) Cascade(key string) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(key) {
		it = it.Parent
	}
	return it
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGText      = "Text"
	PGPosition  = "Position"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":           PGMargins, // Margins
	"margin-left":          PGMargins,
	"margin-right":         PGMargins,
	"margin-bottom":        PGMargins,
	"padding-top":          PGPadding, // Padding
	"padding-left":         PGPadding,
	"padding-right":        PGPadding,
	"padding-bottom":       PGPadding,
	"width":                PGDimension, // Dimension
	"height":               PGDimension,
	"min-width":            PGDimension,
	"min-height":           PGDimension,
	"max-width":            PGDimension,
	"max-height":           PGDimension,
	"display":              PGDisplay, // Display
	"visibility":           PGDisplay,
	"break-before":         PGDisplay,
	"flex-direction":       PGFlex, // Flex container
	"flex-wrap":            PGFlex,
	"justify-content":      PGFlex,
	"align-items":          PGFlex,
	"align-content":        PGFlex,
	"max-lines":            PGFlex,
	"align-self":           PGFlex, // Flex item
	"order":                PGFlex,
	"flex-grow":            PGFlex,
	"flex-shrink":          PGFlex,
	"flex-basis":           PGFlex,
	"flex-wrap-before":     PGFlex,
	"horizontal-alignment": PGFlex,
	"vertical-alignment":   PGFlex,
	"position":             PGPosition, // Position
	"top":                  PGPosition,
	"right":                PGPosition,
	"bottom":               PGPosition,
	"left":                 PGPosition,
	"direction":            PGText, // Text
	"white-space":          PGText,
	"baseline":             PGText,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	switch key {
	case "direction", "visibility", "white-space":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// Shorthands "flex" and "flex-flow" are split as well.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(strings.ToLower(value.String()))
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "flex":
		return splitFlex(fields)
	case "flex-flow":
		return splitFlexFlow(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound is true for shorthand properties SplitCompoundProperty knows
// how to split.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "flex", "flex-flow":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// splitFlex expands 'flex: grow shrink basis' with the CSS keyword forms
// none, auto and initial.
func splitFlex(fields []string) ([]KeyValue, error) {
	flex := func(grow, shrink, basis string) []KeyValue {
		return []KeyValue{
			{"flex-grow", Property(grow)},
			{"flex-shrink", Property(shrink)},
			{"flex-basis", Property(basis)},
		}
	}
	isNumber := func(s string) bool {
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}
	switch len(fields) {
	case 1:
		switch f := fields[0]; {
		case f == "none":
			return flex("0", "0", "auto"), nil
		case f == "auto":
			return flex("1", "1", "auto"), nil
		case f == "initial":
			return flex("0", "1", "auto"), nil
		case isNumber(f):
			return flex(f, "1", "0%"), nil
		default:
			return flex("1", "1", f), nil
		}
	case 2:
		if !isNumber(fields[0]) {
			break
		}
		if isNumber(fields[1]) {
			return flex(fields[0], fields[1], "0%"), nil
		}
		return flex(fields[0], "1", fields[1]), nil
	case 3:
		if isNumber(fields[0]) && isNumber(fields[1]) {
			return flex(fields[0], fields[1], fields[2]), nil
		}
	}
	return nil, fmt.Errorf("illegal flex shorthand: %q", strings.Join(fields, " "))
}

// splitFlexFlow expands 'flex-flow: direction wrap', in any order.
func splitFlexFlow(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("expecting 1-2 values for flex-flow")
	}
	var r []KeyValue
	for _, f := range fields {
		switch f {
		case "row", "row-reverse", "column", "column-reverse":
			r = append(r, KeyValue{"flex-direction", Property(f)})
		case "nowrap", "wrap", "wrap-reverse":
			r = append(r, KeyValue{"flex-wrap", Property(f)})
		default:
			return nil, fmt.Errorf("illegal flex-flow value: %q", f)
		}
	}
	return r, nil
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a box: a box links to a property map,
// which contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	if pmap == nil {
		return "Property Map = {}"
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	s := "Property Map = {\n"
	for _, name := range names {
		s += pmap.m[name].String()
	}
	return s + "}"
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// GetString returns a style property value, or the empty string.
func (pmap *PropertyMap) GetString(key string) Property {
	p, _ := pmap.Property(key)
	return p
}

// Add adds a property to this property map, e.g.,
//
//	pm.Add("flex-grow", "2")
//
// Shorthand properties are split into their components.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Errorf("style: %v", err)
			return
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// AddAll adds all properties of another map, overwriting existing values.
func (pmap *PropertyMap) AddAll(other *PropertyMap) {
	if other == nil {
		return
	}
	for _, g := range other.m {
		for _, kv := range g.Properties() {
			pmap.Add(kv.Key, kv.Value)
		}
	}
}
