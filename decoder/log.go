package decoder

import "github.com/sirupsen/logrus"

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used to report index construction. Nothing
// is logged while decoding. It must not be called concurrently with the
// first decode through any table.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}
