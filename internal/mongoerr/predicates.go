package mongoerr

import "regexp"

var (
	notAuthorizedPattern = regexp.MustCompile(`^not authorized`)
	notReplicasetPattern = regexp.MustCompile(`^not running with --replSet`)
	routerPattern        = regexp.MustCompile(`^replSetGetStatus is not supported through mongos`)
)

// IsNotAuthorized reports whether the driver refused the operation because
// of an access control restriction, e.g.
//
//	not authorized on admin to execute command { getCmdLineOpts: 1 }
func IsNotAuthorized(err error) bool {
	return matchStart(notAuthorizedPattern, err)
}

// IsNotReplicaset reports whether a replica set command ran against an
// instance that is not using replication.
func IsNotReplicaset(err error) bool {
	return matchStart(notReplicasetPattern, err)
}

// IsRouter reports whether a replica set command ran against a mongos.
func IsRouter(err error) bool {
	return matchStart(routerPattern, err)
}

func matchStart(pattern *regexp.Regexp, err error) bool {
	if err == nil {
		return false
	}
	return pattern.MatchString(message(err))
}
