// Package read implements line-oriented input readers returning
// three-variant results instead of raising errors.
//
// LineReader is the shared base over any byte stream; OpenFile and
// OpenHTML bind it to a local file or a remote document. Both
// factories are total functions: every open-time error surfaces as a
// failure result, so call sites compose with solo and chain without a
// separate error path.
//
// Reading follows a scoped acquisition discipline: every successful
// open must be paired with exactly one Close, on every exit path.
//
//	res := read.OpenFile(path)
//	defer res.ForEach(func(r *read.LineReader) { r.Close() }, nil, nil)
package read
