// Package render rasterises experiment diagrams to images.
//
// [Image] implements lab.Surface on an image.RGBA with basicfont text, so the
// same diagram code that draws to the terminal canvas can produce PNG frames
// and GIF animations.
package render
