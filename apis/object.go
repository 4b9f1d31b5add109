/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// IObject is any value created through a TypeRegistry factory. It extends
// IInterface with the ability to hand out further strong references to
// itself.
type IObject interface {
	IInterface
	// GetSelf returns the object's installed self-weak handle (a
	// refcount.Weak[IObject], type-erased), or nil if no self-weak has been
	// installed yet (for example during construction, before the factory
	// has run the creation pipeline). Callers type-assert and call Upgrade
	// to obtain a new strong reference.
	GetSelf() any
}

// IMetadataContainer is implemented by objects that can host a
// MetadataContainer. The type registry's creation pipeline calls
// SetMetadataContainer exactly once, after installing the self-weak
// reference, if the class's ClassInfo.Members is non-empty.
type IMetadataContainer interface {
	IInterface
	// SetMetadataContainer installs mc as this object's metadata container.
	// One-shot: a second call is a no-op.
	SetMetadataContainer(mc IMetadata)
	// Metadata returns the installed metadata container, or nil if none has
	// been installed.
	Metadata() IMetadata
}
