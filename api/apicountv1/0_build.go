package apicountv1

import (
	"github.com/fulldump/box"
)

func BuildV1Counts(v1 *box.R) *box.R {

	counts := v1.Resource("/counts").
		WithActions(
			box.Get(listCounts),
			box.Post(createCount),
		)

	v1.Resource("/counts/{n}").
		WithActions(
			box.Get(getCount),
			box.ActionPost(verify).WithName("verify"),
		)

	v1.Resource("/methods").
		WithActions(
			box.Get(listMethods),
		)

	v1.Resource("/jobs").
		WithActions(
			box.Get(listJobs),
			box.Post(createJob),
			box.ActionPost(find).WithName("find"),
		)

	v1.Resource("/jobs/{jobId}").
		WithActions(
			box.Get(getJob),
		)

	return counts
}
