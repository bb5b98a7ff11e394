// compileinfoprint is imported for its side effect: the build of the running
// binary is written to os.Stderr at start-up.
package compileinfoprint

import "github.com/carbocation/denovoplot/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
