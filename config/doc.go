// Package config loads roadgrid settings from TOML.
//
// A complete file:
//
//	[classifier]
//	threshold = 200          # mean RGB strictly above this is road
//
//	[routing]
//	tier = "standard"        # routine | standard | urgent
//	strategy = ""            # bfs | dijkstra | astar; overrides the tier
//
//	[depot]
//	x = 0
//	y = 0
//
//	[log]
//	level = "info"           # debug | info | warn | error
//	format = "text"          # text | json | logfmt
//
//	[[incidents]]
//	x = 12
//	y = 7
//	tier = "urgent"
//	description = "collision"
//
// Every section is optional; missing keys keep the values of Default.
// Unknown keys are rejected so typos do not pass silently. All validation
// failures wrap ErrInvalidConfig.
package config
