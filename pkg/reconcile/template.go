package reconcile

import (
	"os"
)

// DefaultConfigXML is the job definition used when create is given no
// config: no SCM, no triggers, enabled, sequential (non-concurrent) builds,
// nothing to build and nowhere to publish.
const DefaultConfigXML = `<?xml version='1.0' encoding='UTF-8'?>
<project>
  <actions/>
  <description></description>
  <keepDependencies>false</keepDependencies>
  <properties/>
  <scm class="hudson.scm.NullSCM"/>
  <canRoam>true</canRoam>
  <disabled>false</disabled>
  <blockBuildWhenDownstreamBuilding>false</blockBuildWhenDownstreamBuilding>
  <blockBuildWhenUpstreamBuilding>false</blockBuildWhenUpstreamBuilding>
  <triggers/>
  <concurrentBuild>false</concurrentBuild>
  <builders/>
  <publishers/>
  <buildWrappers/>
</project>`

// ExpandConfig substitutes ${KEY} and $KEY references in a config template
// from the given parameter map. Keys not in the map expand to the empty
// string, matching shell behaviour.
func ExpandConfig(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	return os.Expand(template, func(key string) string {
		return params[key]
	})
}
