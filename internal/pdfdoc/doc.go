// Package pdfdoc implements the report.DocWriter contract on top of the
// go-pdf/fpdf library.
//
// The composer in the report package never touches fpdf directly; this
// package is the single place the physical PDF backend is bound, so swapping
// the library touches one file.
package pdfdoc
