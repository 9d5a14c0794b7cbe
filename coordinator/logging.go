package coordinator

import "github.com/sirupsen/logrus"

// cLineFormatter renders every log line as a bare `c <message>` line
// with no timestamp or level, matching the teacher's own
// `log.SetPrefix("c [gini] ")` convention and spec.md §6.3's exact
// stdout format, generalized to logrus per the ambient logging stack.
type cLineFormatter struct{}

func (f *cLineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return append([]byte("c "+entry.Message), '\n'), nil
}
