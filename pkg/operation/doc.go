/*
Package operation implements the production build: cleaning the build root
and copying the source tree into it.

	+-------------+      +-------------+      +-------------+
	|   source    | ---> |  operation  | ---> |   status    |
	|   (walk)    |      | (exclude,   |      | (write,     |
	+-------------+      |  strip)     |      |  copy)      |
	                     +------+------+      +-------------+
	                            |
	                     +------+------+
	                     |     log     |
	                     | (progress)  |
	                     +-------------+

🎯 Purpose:
- Deletes and recreates the build root
- Walks the source tree, skipping excluded paths and the build root
- Strips debug calls from processed files, copies everything else
- Accumulates statistics for the final report

🔄 Flow:
 1. CheckSource makes sure nothing is written when the source is unreadable
 2. The clean operation resets the build root
 3. The build operation walks the source in lexical order
 4. Each file is tracked by the status package and recorded in Stats
 5. Build prints the summary

⚡ Operations run sequentially through an OperationRunner; the context is
checked between operations and between files.

🔍 Example:

	ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr))
	stats, err := operation.Build(ctx, config.Default(), operation.BuildOptions{})
*/
package operation
