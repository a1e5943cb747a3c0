// Package sim implements the deterministic synthetic-data pipeline of
// the survey programme demo: a seeded population/response simulator
// feeding a privacy-aware aggregation engine with small-cell
// suppression.
//
// The whole pipeline is a single synchronous computation. Generate is
// a pure function of its seed apart from the private random state it
// owns; calling it twice with the same seed yields field-for-field
// identical output. Iteration order (schools, year groups, students,
// waves, surveys, items) is fixed because reordering any loop would
// change the draw sequence.
package sim
