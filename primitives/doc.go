// Package primitives builds ready-made meshes (Cube, Plane) and assembles
// arbitrary ones from a polygon soup (FromPolygonSoup). Unlike euler, which
// grows a mesh one legal step at a time, FromPolygonSoup already knows the
// whole shape up front and assembles its winged edges directly — welding
// shared vertices and stitching shared edges in one pass rather than
// replaying a sequence of MVSF/MEV/MEF calls.
package primitives
