// File: internal/service/policy.go
package service

// Capability 表示可授予身分的單一能力。
type Capability string

// CapWorkLogWrite 允許建立與刪除工時紀錄。
const CapWorkLogWrite Capability = "worklog:write"

// AccessPolicy 將身分對應到授予的能力集合，並指定工時資料集的
// 正規擁有者。機制保持一般化，部署上的政策仍只授權單一身分寫入。
type AccessPolicy struct {
	owner  string
	grants map[string]map[Capability]struct{}
}

// NewAccessPolicy 以指定擁有者與授權表建立政策。
func NewAccessPolicy(owner string, grants map[string][]Capability) AccessPolicy {
	p := AccessPolicy{owner: owner, grants: make(map[string]map[Capability]struct{}, len(grants))}
	for id, caps := range grants {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[c] = struct{}{}
		}
		p.grants[id] = set
	}
	return p
}

// SingleWriterPolicy 建立只授權 owner 寫入的政策。
func SingleWriterPolicy(owner string) AccessPolicy {
	return NewAccessPolicy(owner, map[string][]Capability{
		owner: {CapWorkLogWrite},
	})
}

// Allows 回報 id 是否擁有指定能力。
func (p AccessPolicy) Allows(id string, c Capability) bool {
	caps, ok := p.grants[id]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// Owner 回傳工時資料集的正規擁有者身分。
func (p AccessPolicy) Owner() string {
	return p.owner
}
