package gcpagent

import (
	"github.com/amit7itz/goset"
	"github.com/samber/lo"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/iam/v1"
)

// policyDocument is the part of an IAM policy shared by project and service account policies.
// Conditions are carried through untouched; only unconditional bindings are ever edited.
type policyDocument struct {
	Version  int64
	Etag     string
	Bindings []*policyBinding
}

type policyBinding struct {
	Role      string
	Members   []string
	Condition any
}

func (p *policyDocument) unconditionalBinding(role string) (*policyBinding, bool) {
	return lo.Find(p.Bindings, func(binding *policyBinding) bool {
		return binding.Role == role && binding.Condition == nil
	})
}

func (p *policyDocument) members(role string) *goset.Set[string] {
	binding, found := p.unconditionalBinding(role)
	if !found {
		return goset.NewSet[string]()
	}
	return goset.FromSlice(binding.Members)
}

func (p *policyDocument) hasMember(role string, member string) bool {
	return p.members(role).Contains(member)
}

// addMember returns false when member was already bound to role.
func (p *policyDocument) addMember(role string, member string) bool {
	binding, found := p.unconditionalBinding(role)
	if !found {
		p.Bindings = append(p.Bindings, &policyBinding{Role: role, Members: []string{member}})
		return true
	}
	if lo.Contains(binding.Members, member) {
		return false
	}
	binding.Members = append(binding.Members, member)
	return true
}

// removeMember returns false when member was not bound to role. Bindings left without members are dropped,
// since the API rejects them.
func (p *policyDocument) removeMember(role string, member string) bool {
	binding, found := p.unconditionalBinding(role)
	if !found || !lo.Contains(binding.Members, member) {
		return false
	}
	binding.Members = lo.Without(binding.Members, member)
	if len(binding.Members) == 0 {
		p.Bindings = lo.Without(p.Bindings, binding)
	}
	return true
}

// prepareForWrite raises the version when conditional bindings are present, which SetIamPolicy requires.
func (p *policyDocument) prepareForWrite() {
	hasConditions := lo.SomeBy(p.Bindings, func(binding *policyBinding) bool {
		return binding.Condition != nil
	})
	if hasConditions {
		p.Version = iamPolicyVersion
	}
}

func fromServiceAccountPolicy(policy *iam.Policy) *policyDocument {
	if policy == nil {
		return &policyDocument{}
	}

	document := &policyDocument{Version: policy.Version, Etag: policy.Etag}
	for _, binding := range policy.Bindings {
		documentBinding := &policyBinding{Role: binding.Role, Members: append([]string{}, binding.Members...)}
		if binding.Condition != nil {
			documentBinding.Condition = binding.Condition
		}
		document.Bindings = append(document.Bindings, documentBinding)
	}
	return document
}

func (p *policyDocument) toServiceAccountPolicy() *iam.Policy {
	p.prepareForWrite()
	policy := &iam.Policy{Version: p.Version, Etag: p.Etag, Bindings: make([]*iam.Binding, 0, len(p.Bindings))}
	for _, binding := range p.Bindings {
		iamBinding := &iam.Binding{Role: binding.Role, Members: binding.Members}
		if condition, ok := binding.Condition.(*iam.Expr); ok {
			iamBinding.Condition = condition
		}
		policy.Bindings = append(policy.Bindings, iamBinding)
	}
	return policy
}

func fromProjectPolicy(policy *cloudresourcemanager.Policy) *policyDocument {
	if policy == nil {
		return &policyDocument{}
	}

	document := &policyDocument{Version: policy.Version, Etag: policy.Etag}
	for _, binding := range policy.Bindings {
		documentBinding := &policyBinding{Role: binding.Role, Members: append([]string{}, binding.Members...)}
		if binding.Condition != nil {
			documentBinding.Condition = binding.Condition
		}
		document.Bindings = append(document.Bindings, documentBinding)
	}
	return document
}

func (p *policyDocument) toProjectPolicy() *cloudresourcemanager.Policy {
	p.prepareForWrite()
	policy := &cloudresourcemanager.Policy{Version: p.Version, Etag: p.Etag, Bindings: make([]*cloudresourcemanager.Binding, 0, len(p.Bindings))}
	for _, binding := range p.Bindings {
		projectBinding := &cloudresourcemanager.Binding{Role: binding.Role, Members: binding.Members}
		if condition, ok := binding.Condition.(*cloudresourcemanager.Expr); ok {
			projectBinding.Condition = condition
		}
		policy.Bindings = append(policy.Bindings, projectBinding)
	}
	return policy
}
