// Package svgpath parses, rewrites, builds and measures SVG path data.
//
// # Segments
//
// [ParseSegments] turns the value of a path element's d attribute into a
// list of [Segment] values, exactly as written: relative coordinates stay
// relative and shorthand commands stay shorthand. The parser follows the
// path data grammar of SVG 1.1 strictly. Arc flags are single characters, a
// comma must be followed by another parameter, and the first command must
// be a moveto. Malformed input yields no segments at all together with a
// [*ParseError] describing the first problem and its byte offset.
//
// [Segments] can then be rewritten:
//
//   - [Segments.Absolute] resolves relative coordinates
//   - [Segments.ExpandShorthand] replaces S and T with C and Q
//   - [Segments.ExpandArcs] approximates arcs with cubic Béziers
//   - [Segments.Normalize] does all of the above and turns H and V into L
//   - [Segments.Transform] maps the segments through an [Affine]
//   - [Segments.Round] rounds parameters without accumulating error
//
// Every rewrite returns a new list and leaves its input alone. [WriteSVG]
// and [Segments.String] serialize segments in the most compact form that
// parses back to the same list.
//
// # Paths
//
// [Path] is a mutable path built through the construction methods of the
// HTML canvas Path2D interface: [Path.MoveTo], [Path.LineTo],
// [Path.BezierCurveTo], [Path.QuadraticCurveTo], [Path.ArcTo], [Path.Arc],
// [Path.Ellipse], [Path.Rect], [Path.RoundRect] and [Path.ClosePath]. As on a
// canvas, calls with non-finite arguments are silently ignored, and invalid
// radii are reported as [*RangeError]. [ParsePath] builds a path from path
// data.
//
// # Measuring
//
// [Segments.BBox] and [Path.BBox] compute tight bounding boxes: curves
// contribute the points they actually pass through, not their control
// points. [LengthTable] answers arc length queries such as the total length
// and the point at a given distance, and backs [Path.TotalLength],
// [Path.PointAtLength] and [Path.PathSegmentAtLength].
//
// The geometric primitives these are built on, [Line], [QuadBez],
// [CubicBez], [Arc] and [Ellipse], are exported for direct use.
//
// # Coordinate system
//
// Like SVG, the package works in a y-down coordinate space. Positive angles
// rotate the positive x axis towards the positive y axis, which appears
// clockwise on screen.
package svgpath
