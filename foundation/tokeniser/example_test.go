package tokeniser_test

import (
	"errors"
	"fmt"

	"github.com/msto63/leutils/foundation/tokeniser"
)

func ExampleTokenise() {
	tok, err := tokeniser.Tokenise(`cp -r "My Documents" --verbose`)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(tok.Arguments())
	fmt.Println(tok.Flags())
	fmt.Println(tok.Options())
	// Output:
	// [cp -r My Documents --verbose]
	// [-r]
	// [--verbose]
}

func ExampleTokenise_unclosedQuote() {
	_, err := tokeniser.Tokenise(`echo "hello world`)

	var quoteErr *tokeniser.UnclosedQuoteError
	if errors.As(err, &quoteErr) {
		fmt.Printf("fragment: %s\n", quoteErr.Fragment)
	}
	fmt.Println(err)
	// Output:
	// fragment: hello world
	// expected closing quote for starting quote -> "hello world
}

func ExampleToken_FlagAt() {
	tok := tokeniser.MustTokenise("tar -xzf archive.tar --strip")

	flag, _ := tok.FlagAt(0, false)
	option, _ := tok.OptionAt(0, false)
	value, _ := tok.FlagValueAt(0)

	fmt.Println(flag, option, string(value))
	// Output: xzf strip x
}

func ExampleToken_String() {
	fmt.Println(tokeniser.MustTokenise(`say \"hi\" there`))
	// Output: Token{arguments=[say, "hi", there]}
}
