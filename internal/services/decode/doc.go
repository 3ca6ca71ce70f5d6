// Package decode turns a raw QR payload into the single Result printed by the CLI.
//
// It calls the auto-detecting decoder, tags the fields with a separately
// computed QR type, checks requested contact details, and folds any decoder
// failure into an error Result carrying a bounded preview of the payload.
package decode
