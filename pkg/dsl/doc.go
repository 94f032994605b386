/*
Package dsl provides a fluent builder for constructing decks in Go.

It is the programmatic alternative to authoring markdown files: build
the deck, compile it to a memory loader, and hand it to chalk.New via
chalk.WithLoader.

	loader, err := dsl.New("Type Systems").
		Slide("intro").Title("Welcome").Step("Hello!").
		Slide("code").Code("go", "package main\n", dsl.WithHighlight(1, 1)).
		End().Build()
*/
package dsl
