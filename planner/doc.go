// Package planner implements the Query Facade (spec.md §4.6): the thin
// operations Plan and TimesFrom that instantiate a scan.Run sweep against
// a shared timetable.Store and format its result, plus the isochrone
// banding the distilled spec left to the (out-of-scope) front-end but
// which SPEC_FULL.md pulls in from the original implementation. The
// human-readable step grouping lives in route.Steps.
package planner
