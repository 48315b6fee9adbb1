package organizations

import (
	"context"

	"pawcare-service/internal/app/contracts"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	orgTypeCodeProvider    = "prov"
	orgTypeDisplayProvider = "Healthcare Provider"

	telecomSystemPhone = "phone"
	telecomSystemEmail = "email"
	telecomUseWork     = "work"
)

// Encoder converts hospital profiles into Organization bundles. The
// attachment resolver is the single suspension point in the conversion
// layer; every other step is a pure in-memory transformation.
type Encoder struct {
	log      *zap.Logger
	resolver contracts.AttachmentResolver
}

func NewEncoder(log *zap.Logger, resolver contracts.AttachmentResolver) *Encoder {
	return &Encoder{
		log:      log,
		resolver: resolver,
	}
}

// HospitalProfileToFHIR builds one Organization, one HealthcareService per
// selected service, and one DocumentReference per uploaded document, merged
// into a single collection bundle. A failed URL resolution leaves a null
// url on that document; the resource is still emitted.
func (e *Encoder) HospitalProfileToFHIR(ctx context.Context, profile *requests.HospitalProfileRequest, extensionBaseURL string) fhir_dto.Bundle {
	orgID := profile.ID
	if orgID == "" {
		orgID = uuid.NewString()
	}

	entries := []fhir_dto.Entry{{
		FullUrl:  utils.BuildURN(orgID),
		Resource: e.buildOrganization(ctx, profile, orgID, extensionBaseURL),
	}}

	for _, service := range profile.SelectedServices {
		serviceID := uuid.NewString()
		entries = append(entries, fhir_dto.Entry{
			FullUrl: utils.BuildURN(serviceID),
			Resource: fhir_dto.HealthcareService{
				ResourceType: constvars.ResourceHealthcareService,
				ID:           serviceID,
				ProvidedBy:   fhir_dto.Reference{Reference: utils.BuildURN(orgID)},
				Name:         service.Display,
				Type: []fhir_dto.CodeableConcept{{
					Coding: []fhir_dto.Coding{{
						System:  constvars.FhirCodingSystemServiceType,
						Code:    service.Code,
						Display: service.Display,
					}},
				}},
			},
		})
	}

	for _, document := range profile.Documents {
		documentID := uuid.NewString()
		entries = append(entries, fhir_dto.Entry{
			FullUrl: utils.BuildURN(documentID),
			Resource: fhir_dto.DocumentReference{
				ResourceType: constvars.ResourceDocumentReference,
				ID:           documentID,
				Status:       constvars.FhirDocumentStatusCurrent,
				Subject:      fhir_dto.Reference{Reference: utils.BuildReference(constvars.ResourceOrganization, orgID)},
				Content: []fhir_dto.DocumentReferenceContent{{
					Attachment: fhir_dto.Attachment{
						ContentType: document.ContentType,
						Title:       document.Title,
						Url:         e.resolveURL(ctx, document.FileKey),
					},
				}},
			},
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        entries,
	}
}

func (e *Encoder) buildOrganization(ctx context.Context, profile *requests.HospitalProfileRequest, orgID, extensionBaseURL string) fhir_dto.Organization {
	resource := fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		ID:           orgID,
		Active:       profile.Active,
		Name:         profile.Name,
		Type: []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{
				System:  constvars.FhirCodingSystemOrgType,
				Code:    orgTypeCodeProvider,
				Display: orgTypeDisplayProvider,
			}},
		}},
	}

	if profile.Phone != "" {
		resource.Telecom = append(resource.Telecom, fhir_dto.ContactPoint{
			System: telecomSystemPhone,
			Value:  profile.Phone,
			Use:    telecomUseWork,
		})
	}
	if profile.Email != "" {
		resource.Telecom = append(resource.Telecom, fhir_dto.ContactPoint{
			System: telecomSystemEmail,
			Value:  profile.Email,
			Use:    telecomUseWork,
		})
	}

	if address := buildAddress(profile, extensionBaseURL); address != nil {
		resource.Address = []fhir_dto.Address{*address}
	}

	resource.Extension = e.buildOrganizationExtensions(ctx, profile, extensionBaseURL)
	return resource
}

func buildAddress(profile *requests.HospitalProfileRequest, extensionBaseURL string) *fhir_dto.Address {
	if profile.AddressLine == "" && profile.City == "" && profile.State == "" &&
		profile.PostalCode == "" && profile.Country == "" &&
		profile.Latitude == nil && profile.Longitude == nil {
		return nil
	}

	address := fhir_dto.Address{
		Use:        telecomUseWork,
		City:       profile.City,
		State:      profile.State,
		PostalCode: profile.PostalCode,
		Country:    profile.Country,
	}
	if profile.AddressLine != "" {
		address.Line = []string{profile.AddressLine}
	}
	if profile.Latitude != nil && profile.Longitude != nil {
		if ext, err := fhir_dto.EncodeExtension(extensionBaseURL+"/"+constvars.ExtensionPathLatitude, *profile.Latitude); err == nil {
			address.Extension = append(address.Extension, ext)
		}
		if ext, err := fhir_dto.EncodeExtension(extensionBaseURL+"/"+constvars.ExtensionPathLongitude, *profile.Longitude); err == nil {
			address.Extension = append(address.Extension, ext)
		}
	}
	return &address
}

// Extensions are sparse: an absent profile field produces no extension at
// all, never one with an empty value.
func (e *Encoder) buildOrganizationExtensions(ctx context.Context, profile *requests.HospitalProfileRequest, baseURL string) []fhir_dto.Extension {
	var extensions []fhir_dto.Extension

	appendValue := func(path string, value interface{}) {
		ext, err := fhir_dto.EncodeExtension(baseURL+"/"+path, value)
		if err != nil {
			return
		}
		extensions = append(extensions, ext)
	}

	if profile.RegistrationNumber != "" {
		appendValue(constvars.ExtensionPathRegistrationNo, profile.RegistrationNumber)
	}
	if profile.EstablishmentYear != nil {
		appendValue(constvars.ExtensionPathEstablishment, *profile.EstablishmentYear)
	}
	if profile.Website != "" {
		appendValue(constvars.ExtensionPathWebsite, fhir_dto.URL(profile.Website))
	}
	if profile.LogoKey != "" {
		if logoURL := e.resolveURL(ctx, profile.LogoKey); logoURL != nil {
			appendValue(constvars.ExtensionPathLogo, fhir_dto.URL(*logoURL))
		}
	}

	return extensions
}

func (e *Encoder) resolveURL(ctx context.Context, fileKey string) *string {
	resolved, err := e.resolver.ResolveRetrievalURL(ctx, fileKey)
	if err != nil {
		e.log.Warn("failed to resolve attachment URL",
			zap.String("file_key", fileKey),
			zap.Error(err),
		)
		return nil
	}
	if resolved == "" {
		return nil
	}
	return &resolved
}
