// Package ocr turns captured page images into a Markdown transcript.
//
// Recognition shells out to the tesseract engine, one invocation per image,
// with the language and engine options taken from the config store. The
// transcript is a sequence of "## Page N" sections separated by horizontal
// rules; a page whose image is missing or fails recognition becomes a
// placeholder section so the rest of the book still comes through.
//
// Long runs can report progress through a callback and through a polled
// JSON status file (StatusWriter), matching the two ways the capture
// command and external watchers observe a transcription.
package ocr
