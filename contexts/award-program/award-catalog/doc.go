// Package awardcatalog implements the Award Catalog module inside the
// award-program context.
//
// The module owns Award and ScheduleStage records: creation, full-stage-set
// replacement on update, and the explicit cascade delete that removes stages,
// projects, and their evaluations with the award. It performs pure data
// validation only; project state machines live in project-lifecycle.
package awardcatalog
