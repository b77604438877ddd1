// Package rating contains the Rating aggregate root.
//
// A rating is feedback left on a delivered order, scored from 1 to 5 with an
// optional comment. A given rater can leave at most one rating per rated user
// per order. Submitting again replaces the score and comment, so ratings act
// as an upsert keyed by order and rated user.
package rating
