// Package substyle resolves nested style definitions into the concrete
// style and class name of a single UI node.
//
// A style definition is an ordered Tree that mixes three kinds of keys:
//
//   - declarations such as "color" or "padding", plus pseudo-selector
//     (":hover") and at-rule ("@media ...") blocks, which apply to the
//     node itself;
//   - elements such as "header" or "label", which hold the style of a
//     nested child node;
//   - modifiers such as "&disabled", which hold styles that only apply
//     while that state is selected.
//
// Create turns a definition into a Resolver. The Resolver exposes the
// direct style and class name for the current level and narrows down to
// children or active modifiers through Select:
//
//	r := substyle.Create(substyle.Props{Style: def, ClassName: "btn"}, nil)
//	disabled := r.MustSelect("&disabled")      // className "btn btn--disabled"
//	label := disabled.MustSelect("label")      // className "btn__label"
//
// Selecting the same keys with the same default style twice returns the
// same *Resolver, so callers can compare results by pointer.
package substyle
