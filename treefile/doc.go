/*
Package treefile loads serialized parse trees from files, for rendering
trees produced by parsers running out of process.

(See the Node type and the JSON representation in the asciitree package.)
*/
package treefile
