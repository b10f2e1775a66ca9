// Package preset holds named grid layouts.
//
// A Registry is an explicit value passed to whoever needs lookups; there is
// no package-level catalog. Builtin returns a registry pre-loaded with the
// stock layouts (5x5, 10x10, 15x15, Maze, Weighted). More presets can be
// registered in code or loaded from YAML:
//
//	presets:
//	  - name: Corridor
//	    rows: 3
//	    cols: 6
//	    goal: [2, 5]
//	    obstacles: [[1, 1], [1, 2], [1, 3]]
//	    weights:
//	      - at: [0, 4]
//	        weight: 2.5
//
// Get always returns a clone, so callers may edit the grid freely.
package preset
