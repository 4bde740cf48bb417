// Package kvargs binds a program's arguments to an ordered list of declared
// parameters, positionally or as name=value pairs, without any flag syntax.
//
// For example:
//  m := kvargs.New()
//  m.MustAdd("sourcefile", kvargs.Desc("input file path"), kvargs.Type(kvargs.Path))
//  m.MustAdd("sinkfile", kvargs.Desc("output file path"), kvargs.Type(kvargs.Path))
//  m.MustAdd("nsamples", kvargs.Desc("sampling count"), kvargs.Type(kvargs.Int), kvargs.Default(10))
//  args := m.ParseOrExit(os.Args[1:])
//
// Which accepts any of:
//  prog infile outfile
//  prog infile outfile 20
//  prog infile outfile nsamples=20
//  prog infile sinkfile=outfile nsamples=20
//  prog sourcefile=infile sinkfile=outfile nsamples=20
//
// Positional arguments bind to the parameter declared at the same index.
// Once an argument is given as name=value, all following arguments must be
// too. Arguments after "--" are not parsed, and are returned under
// IgnoredKey. Any of the HelpKeywords prints usage to stderr and exits.
//
// Parameters without a default are required, and must be declared before any
// with a default.
package kvargs
