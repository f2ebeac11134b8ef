// Package codec reads and writes the SocialCalc sheet save format.
//
// A save is a sequence of lines of the form linetype:param1:param2:...
//
//	version:1.5
//	cell:A1:v:42:f:1
//	cell:B1:t:Total\cdue
//	cell:C1:vtf:n:84:A1*2
//	col:A:w:120
//	row:3:h:20:hide:yes
//	sheet:c:3:r:3
//	font:1:normal bold 12pt Arial
//	name:TOTAL::C1
//
// Text fields escape ':' as \c, newline as \n and '\' as \b. Cell lines are
// a sequence of tag:operand groups (v, t, vt, vtf, vtc, ro, e, b, l, f, c,
// bg, cf, tvf, ntvf, colspan, rowspan, cssc, csss, comment, mod). Fields left
// out of a line take their zero value.
//
// Parse and Format are each other's inverse for any sheet Parse produced,
// except that rows explicitly marked "hide:no" are not written back.
package codec
