package view

import (
	"io"
	"strings"

	"github.com/dc2calc/dc2/pkg/buildinfo"
)

// Screens shows the help, credits and license screens on Out. After each
// page it calls Wait, which should return when the user presses Enter.
type Screens struct {
	Out  io.Writer
	Wait func() error
}

func (s Screens) show(pages ...string) error {
	for _, page := range pages {
		if _, err := io.WriteString(s.Out, ClearScreen+page); err != nil {
			return err
		}
		if s.Wait != nil {
			if err := s.Wait(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Help shows the two help pages.
func (s Screens) Help() error {
	return s.show(helpPage1, helpPage2)
}

// Credits shows the credits and the license information.
func (s Screens) Credits() error {
	return s.show("\n" + credits + "LICENSE INFORMATION\n" +
		"ˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆ\n" + licenseMessage() + "\n\npress ENTER to continue\n")
}

// License shows the license message.
func (s Screens) License() error {
	return s.show(licenseMessage() + "\npress ENTER to continue\n")
}

func licenseMessage() string {
	return buildinfo.Banner() + "\n" + license
}

const license = `dc2 comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it
under certain conditions.
Check the license at https://www.gnu.org/licenses/old-licenses/gpl-2.0.html
`

const credits = `Dave's (RPN) Calculator
ˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆˆ
made with love in Italy
<mastro35@gmail.com> || https://hachyderm.io/@mastro35
If you enjoy this program buy me a coffee at
https://buymeacoffee.com/mastro35

`

var helpPage1 = strings.TrimLeft(`
HELP - Dave's (RPN) Calculator
---------------------------------
Basics:
  <number>                     Push number to stack
  ENTER (empty input)          Duplicate top of stack (x -> x x)
  + - * /                      Arithmetic operations
  ^ / pow / power              Power (y^x)
  fix / sci                    Set numeric display format
  deg / rad                    Set angle mode

Stack Operations:
  d / drop                     Remove top of stack (x)
  s / swap                     Swap top two values
  c / clear                    Clear stack
  roll / unroll / arrow keys   Rotate stack (right / left)

Constants and Random:
  pi                           Push π
  e                            Push Euler's number
  rnd / random                 Push random number [0,1)

Press ENTER for more...`, "\n")

var helpPage2 = strings.TrimLeft(`
HELP (page 2) - Dave's (RPN) Calculator
---------------------------------------
Functions:
  sqrt                         Square root
  log / ln                     Natural logarithm
  log10                        Log base 10
  !                            Factorial (n!)
  rec / reciprocal / \         Reciprocal (1/x)

Trigonometry:
  sin  cos  tan                Basic trig functions
  asin acos atan               Inverse trig functions

Other Commands:
  r / redo                     Repeat last command
  h / help                     Show this help
  ? / credits                  About the author
  license                      Show the license
  q / quit                     Exit calculator

Made with ❤ in Italy   (v`+buildinfo.Version+`)
Press ENTER to return...`, "\n")
