// Package study runs the per-subject NOVA model.
//
// Students enrol in subjects, each subject scales the accuracy input of its
// parameter sets by a difficulty weight, and an [Optimizer] computes the
// learning gain of every (student, subject) pair and labels it with a
// [nova.FixedThreshold] classifier. Pairs are independent of each other:
// adding or removing students or subjects never changes another pair's
// record.
package study
